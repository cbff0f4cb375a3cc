package state

import "path/filepath"

// ActivationKind describes what activating the selected entry did.
type ActivationKind int

const (
	// ActivationNone means nothing was selected.
	ActivationNone ActivationKind = iota
	// ActivationDescend means the browser moved into the selected directory.
	ActivationDescend
	// ActivationDispatch means the selected file should be handed to the
	// wallpaper command. The browser itself is unchanged.
	ActivationDispatch
)

func (k ActivationKind) String() string {
	switch k {
	case ActivationDescend:
		return "descend"
	case ActivationDispatch:
		return "dispatch"
	default:
		return "none"
	}
}

// Activation is the outcome of Activate.
type Activation struct {
	Kind ActivationKind
	Path string
}

// Ascend moves to the parent directory. It reports false without error when
// Path is already a filesystem root. A failed scan leaves the browser as it
// was.
func (b *Browser) Ascend() (bool, error) {
	parent := filepath.Dir(b.Path)
	if parent == b.Path {
		return false, nil
	}
	if err := b.load(parent); err != nil {
		return false, err
	}
	return true, nil
}

// Activate acts on the selected entry: files carrying the target extension
// are returned for dispatch, anything else is entered as a directory. A
// failed scan leaves the browser as it was.
func (b *Browser) Activate() (Activation, error) {
	name, ok := b.SelectedEntry()
	if !ok {
		return Activation{Kind: ActivationNone}, nil
	}
	target := filepath.Join(b.Path, name)
	if b.IsFile(b.Selected) {
		return Activation{Kind: ActivationDispatch, Path: target}, nil
	}
	if err := b.load(target); err != nil {
		return Activation{Kind: ActivationNone, Path: target}, err
	}
	return Activation{Kind: ActivationDescend, Path: target}, nil
}
