package effects

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/materialfx/internal/fault"
	"github.com/Faultbox/materialfx/internal/logger"
)

// MaxTemplates is the number of template references a list file may hold.
const MaxTemplates = 10

// Registry holds the templates loaded for a level. It is read-only after load.
type Registry struct {
	templates []*Template
}

// listDoc is the template list file.
type listDoc struct {
	Templates []string `yaml:"templates"`
}

// NewRegistry builds a registry from already-validated templates.
func NewRegistry(templates ...*Template) *Registry {
	r := &Registry{}
	for _, t := range templates {
		if t != nil && t.Kind.Valid() {
			r.templates = append(r.templates, t)
		}
	}
	return r
}

// LoadRegistry reads the list file at listPath and every template it names
// from fsys. A missing or malformed list file is a *fault.ConfigError.
// Broken template entries are logged and skipped; an empty registry is valid.
func LoadRegistry(fsys fs.FS, listPath string, log *zap.Logger) (*Registry, error) {
	log = logger.OrNop(log)

	data, err := fs.ReadFile(fsys, listPath)
	if err != nil {
		return nil, &fault.ConfigError{Source: listPath, Err: err}
	}

	var list listDoc
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, &fault.ConfigError{Source: listPath, Err: err}
	}

	refs := list.Templates
	if len(refs) > MaxTemplates {
		log.Warn("template list too long, ignoring extra entries",
			zap.String("list", listPath),
			zap.Int("entries", len(refs)),
			zap.Int("max", MaxTemplates))
		refs = refs[:MaxTemplates]
	}

	r := &Registry{}
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}

		t, err := loadTemplate(fsys, ref)
		if err != nil {
			log.Warn("skipping effect template", zap.Error(err))
			continue
		}
		r.templates = append(r.templates, t)
		log.Debug("registered effect template",
			zap.String("name", t.Name),
			zap.Stringer("kind", t.Kind),
			zap.Uint32("duration_ms", t.DurationMs))
	}

	log.Info("effect registry loaded", zap.String("list", listPath), zap.Int("templates", len(r.templates)))
	return r, nil
}

func loadTemplate(fsys fs.FS, ref string) (*Template, error) {
	data, err := fs.ReadFile(fsys, ref)
	if err != nil {
		return nil, &fault.ConfigError{Source: ref, Err: err}
	}

	name := strings.TrimSuffix(path.Base(ref), path.Ext(ref))
	t, err := parseTemplate(name, data)
	if err != nil {
		return nil, &fault.ConfigError{Source: ref, Err: fmt.Errorf("parsing template: %w", err)}
	}
	return t, nil
}

// Find returns the first registered template of the given kind.
func (r *Registry) Find(kind Kind) (*Template, bool) {
	if r == nil {
		return nil, false
	}
	for _, t := range r.templates {
		if t.Kind == kind {
			return t, true
		}
	}
	return nil, false
}

// Templates returns the registered templates in load order.
func (r *Registry) Templates() []*Template {
	if r == nil {
		return nil
	}
	out := make([]*Template, len(r.templates))
	copy(out, r.templates)
	return out
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.templates)
}
