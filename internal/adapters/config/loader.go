// Package config provides the stylefile loader for cssinjs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"go.trai.ch/cssinjs/internal/core/css"
	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/core/ports"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the stylefile at path. When path is a directory, the stylefile is searched for
// in the directory and its parents.
func (l *Loader) Load(path string) (*domain.Stylefile, error) {
	configPath, err := findStylefile(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	sf, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	sf.Path = configPath

	if sf.Options.Dev && len(sf.Options.Linters) == 0 && l.Logger != nil {
		l.Logger.Info("dev mode enables the content-quotes and hashed-animation linters")
	}
	return sf, nil
}

func findStylefile(path string) (string, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}
		path = cwd
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", abs)
	}
	if !info.IsDir() {
		return abs, nil
	}

	currentDir := abs
	for {
		candidate := filepath.Join(currentDir, domain.StylefileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(domain.ErrConfigNotFound, "cwd", abs)
}

// Parse decodes and validates stylefile content.
func Parse(data []byte) (*domain.Stylefile, error) {
	var dto Stylefile
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	if err := validateStylefile(&dto); err != nil {
		return nil, err
	}

	sf := &domain.Stylefile{
		SourceHash: strconv.FormatUint(xxhash.Sum64(data), 36),
		Options:    convertOptions(dto.Options),
		Keyframes:  make(map[string]*css.Keyframes),
	}

	var err error
	for i := range dto.Tokens {
		tok, err := decodeToken(&dto.Tokens[i])
		if err != nil {
			return nil, zerr.With(err, "field", fmt.Sprintf("tokens[%d]", i))
		}
		sf.Tokens = append(sf.Tokens, tok)
	}
	if sf.Override, err = decodeToken(&dto.Override); err != nil {
		return nil, zerr.With(err, "field", "override")
	}
	if sf.Derive, err = decodeToken(&dto.Derive); err != nil {
		return nil, zerr.With(err, "field", "derive")
	}
	if err := decodeKeyframes(&dto.Keyframes, sf.Keyframes); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(dto.Components))
	for i := range dto.Components {
		c, err := convertComponent(&dto.Components[i], sf.Keyframes)
		if err != nil {
			return nil, zerr.With(err, "component", dto.Components[i].Name)
		}
		if _, ok := seen[c.Name]; ok {
			return nil, zerr.With(domain.ErrDuplicateComponent, "component", c.Name)
		}
		seen[c.Name] = struct{}{}
		sf.Components = append(sf.Components, c)
	}
	return sf, nil
}

func convertOptions(dto OptionsDTO) domain.StyleOptions {
	opts := domain.StyleOptions{
		Hashed:       true,
		Salt:         dto.Salt,
		HashPriority: css.PriorityLow,
		AutoClear:    true,
		SSRInline:    dto.SSRInline,
		Mock:         dto.Mock,
		Dev:          dto.Dev,
		Transformers: dto.Transformers,
		Linters:      dto.Linters,
		Px2Rem:       domain.DefaultPx2RemOptions(),
	}
	if dto.Hashed != nil {
		opts.Hashed = *dto.Hashed
	}
	if dto.HashPriority != "" {
		opts.HashPriority = css.HashPriority(dto.HashPriority)
	}
	if dto.AutoClear != nil {
		opts.AutoClear = *dto.AutoClear
	}
	if dto.Px2Rem.RootValue != nil {
		opts.Px2Rem.RootValue = *dto.Px2Rem.RootValue
	}
	if dto.Px2Rem.Precision != nil {
		opts.Px2Rem.Precision = *dto.Px2Rem.Precision
	}
	opts.Px2Rem.MediaQuery = dto.Px2Rem.MediaQuery
	return opts
}

func convertComponent(dto *ComponentDTO, keyframes map[string]*css.Keyframes) (domain.Component, error) {
	c := domain.Component{
		Name:   dto.Name,
		Path:   dto.Path,
		Order:  dto.Order,
		Global: dto.Global,
	}
	if len(c.Path) == 0 {
		c.Path = []string{dto.Name}
	}

	hasStyle := dto.Style.Kind != 0
	switch {
	case hasStyle && dto.CSS != "":
		return c, zerr.With(domain.ErrConfigInvalid, "reason", "style and css are mutually exclusive")
	case dto.CSS != "":
		c.Style = css.Raw(dto.CSS)
		return c, nil
	case !hasStyle:
		return c, zerr.With(domain.ErrConfigInvalid, "reason", "component needs a style or css")
	}

	obj, err := decodeObject(&dto.Style, keyframes)
	if err != nil {
		return c, err
	}
	c.Style = obj
	return c, nil
}

func decodeObject(n *yaml.Node, keyframes map[string]*css.Keyframes) (css.Object, error) {
	if n.Kind != yaml.MappingNode {
		return nil, nodeError(n, "expected a mapping of properties and selectors")
	}

	obj := make(css.Object, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		switch val.Kind {
		case yaml.MappingNode:
			child, err := decodeObject(val, keyframes)
			if err != nil {
				return nil, zerr.With(err, "selector", key.Value)
			}
			obj = append(obj, css.Nest(key.Value, child))
		case yaml.SequenceNode:
			values := make([]css.Value, 0, len(val.Content))
			for _, item := range val.Content {
				v, err := decodeValue(item, keyframes)
				if err != nil {
					return nil, zerr.With(err, "property", key.Value)
				}
				values = append(values, v)
			}
			obj = append(obj, css.Prop{Key: key.Value, Values: values})
		case yaml.ScalarNode:
			v, err := decodeValue(val, keyframes)
			if err != nil {
				return nil, zerr.With(err, "property", key.Value)
			}
			obj = append(obj, css.Decl(key.Value, v))
		default:
			return nil, nodeError(val, "unsupported value for "+key.Value)
		}
	}
	return obj, nil
}

const keyframesPrefix = "keyframes("

func decodeValue(n *yaml.Node, keyframes map[string]*css.Keyframes) (css.Value, error) {
	if n.Kind != yaml.ScalarNode {
		return css.Value{}, nodeError(n, "expected a scalar value")
	}
	switch n.Tag {
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(strings.ReplaceAll(n.Value, "_", ""), 64)
		if err != nil {
			return css.Value{}, nodeError(n, "invalid number")
		}
		return css.Num(f), nil
	case "!!null":
		return css.Value{}, nodeError(n, "null is not a css value")
	}

	s := n.Value
	if strings.HasPrefix(s, keyframesPrefix) && strings.HasSuffix(s, ")") {
		name := strings.TrimSpace(s[len(keyframesPrefix) : len(s)-1])
		kf, ok := keyframes[name]
		if !ok {
			return css.Value{}, zerr.With(domain.ErrUnknownKeyframes, "keyframes", name)
		}
		return css.Anim(kf), nil
	}
	return css.String(s), nil
}

func decodeKeyframes(n *yaml.Node, out map[string]*css.Keyframes) error {
	if n.Kind == 0 {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return zerr.With(nodeError(n, "expected a mapping of keyframes"), "field", "keyframes")
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value
		steps, err := decodeObject(n.Content[i+1], nil)
		if err != nil {
			return zerr.With(err, "keyframes", name)
		}
		out[name] = css.NewKeyframes(name, steps)
	}
	return nil
}

func decodeToken(n *yaml.Node) (*domain.Token, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, nodeError(n, "expected a mapping of tokens")
	}

	tok := domain.NewToken()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		switch val.Kind {
		case yaml.MappingNode:
			nested, err := decodeToken(val)
			if err != nil {
				return nil, zerr.With(err, "token", key)
			}
			tok.Set(key, nested)
		case yaml.ScalarNode:
			var v any
			if err := val.Decode(&v); err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "token", key)
			}
			tok.Set(key, v)
		default:
			return nil, zerr.With(nodeError(val, "unsupported token value"), "token", key)
		}
	}
	return tok, nil
}

func nodeError(n *yaml.Node, reason string) error {
	err := zerr.Wrap(zerr.New(reason), domain.ErrConfigInvalid.Error())
	err = zerr.With(err, "line", n.Line)
	return zerr.With(err, "column", n.Column)
}
