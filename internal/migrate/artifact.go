package migrate

import (
	"fmt"
	"path/filepath"
)

type Kind int

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Artifact is one legacy path and the path it is renamed to
type Artifact struct {
	Name   string
	Kind   Kind
	Legacy string
	Target string
}

// Roots are the directories the artifacts live in.
type Roots struct {
	Config   string // XDG config home
	Pictures string
	Videos   string
}

// DefaultRoots resolves ~/Pictures and ~/Videos under home, with configHome as the config root.
func DefaultRoots(configHome, home string) Roots {
	return Roots{
		Config:   configHome,
		Pictures: filepath.Join(home, "Pictures"),
		Videos:   filepath.Join(home, "Videos"),
	}
}

// Plan lists the config file, pictures and videos artifacts in migration order.
//
// Every target is a fixed path under its root, never derived from where the
// legacy path happens to resolve.
func Plan(id Identity, roots Roots) []Artifact {
	configDir := filepath.Join(roots.Config, id.Organization)
	return []Artifact{
		{
			Name:   "config",
			Kind:   KindFile,
			Legacy: filepath.Join(configDir, id.OldApplication+".conf"),
			Target: filepath.Join(configDir, id.Application+".conf"),
		},
		{
			Name:   "pictures",
			Kind:   KindDir,
			Legacy: filepath.Join(roots.Pictures, id.OldApplication),
			Target: filepath.Join(roots.Pictures, id.Application),
		},
		{
			Name:   "videos",
			Kind:   KindDir,
			Legacy: filepath.Join(roots.Videos, id.OldApplication),
			Target: filepath.Join(roots.Videos, id.Application),
		},
	}
}
