package types

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/matjam/blazefx/pkg/fx"
)

// ElementSpec describes one animated element as it arrives from config
// files, page files and the control API. Durations are seconds.
type ElementSpec struct {
	ID                 string            `json:"id" yaml:"id" mapstructure:"id" validate:"required,max=64,element_id"`
	Kind               string            `json:"kind" yaml:"kind" mapstructure:"kind" validate:"required,kind"`
	Duration           *float64          `json:"duration,omitempty" yaml:"duration,omitempty" mapstructure:"duration" validate:"omitempty,gte=0,lte=86400"`
	Delay              *float64          `json:"delay,omitempty" yaml:"delay,omitempty" mapstructure:"delay" validate:"omitempty,gte=0,lte=86400"`
	Easing             string            `json:"easing,omitempty" yaml:"easing,omitempty" mapstructure:"easing" validate:"omitempty,easing"`
	FillMode           string            `json:"fill_mode,omitempty" yaml:"fill_mode,omitempty" mapstructure:"fill_mode" validate:"omitempty,fill_mode"`
	RenderCompleteOnly bool              `json:"render_complete_only,omitempty" yaml:"render_complete_only,omitempty" mapstructure:"render_complete_only"`
	Content            string            `json:"content,omitempty" yaml:"content,omitempty" mapstructure:"content"`
	Attributes         map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty" mapstructure:"attributes" validate:"omitempty,dive,keys,attr_name,endkeys"`
}

// Defaults fill in the parameters an ElementSpec leaves out.
type Defaults struct {
	Duration float64 `yaml:"duration" mapstructure:"duration" validate:"gte=0,lte=86400"`
	Delay    float64 `yaml:"delay" mapstructure:"delay" validate:"gte=0,lte=86400"`
	Easing   string  `yaml:"easing" mapstructure:"easing" validate:"omitempty,easing"`
	FillMode string  `yaml:"fill_mode" mapstructure:"fill_mode" validate:"omitempty,fill_mode"`
}

// DefaultDefaults matches fx.DefaultConfig.
func DefaultDefaults() Defaults {
	return Defaults{Duration: 1, Easing: "ease-in", FillMode: "both"}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("mapstructure"); name != "" {
				return name
			}
			return fld.Name
		})

		_ = v.RegisterValidation("element_id", func(fl validator.FieldLevel) bool {
			id := fl.Field().String()
			return id != "" && !strings.ContainsAny(id, " \t\n\"'<>&/")
		})
		_ = v.RegisterValidation("attr_name", func(fl validator.FieldLevel) bool {
			return fx.ValidAttributeName(fl.Field().String())
		})
		_ = v.RegisterValidation("kind", func(fl validator.FieldLevel) bool {
			_, err := fx.ParseKind(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("easing", func(fl validator.FieldLevel) bool {
			_, err := fx.ParseEasing(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("fill_mode", func(fl validator.FieldLevel) bool {
			_, err := fx.ParseFillMode(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks a spec and reports every failing field in one error.
func (s ElementSpec) Validate() error {
	return validateStruct(s)
}

func (d Defaults) Validate() error {
	return validateStruct(d)
}

func validateStruct(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	sort.Strings(msgs)
	return fmt.Errorf("invalid element: %s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return field + " must not be negative"
	case "lte":
		return fmt.Sprintf("%s must be at most %s seconds", field, fe.Param())
	case "attr_name":
		return fmt.Sprintf("attribute name %q is not a valid HTML attribute name", fe.Value())
	case "max":
		return fmt.Sprintf("%s is longer than %s characters", field, fe.Param())
	case "element_id":
		return fmt.Sprintf("%s %q contains characters not allowed in an element id", field, fe.Value())
	default:
		return fmt.Sprintf("%s: unknown %s %q", field, fe.Tag(), fe.Value())
	}
}

// Config resolves the spec into an fx.Config, taking anything the spec
// leaves unset from d. The spec must have passed Validate.
func (s ElementSpec) Config(d Defaults) (fx.Config, error) {
	kind, err := fx.ParseKind(s.Kind)
	if err != nil {
		return fx.Config{}, err
	}

	cfg := fx.DefaultConfig(kind)
	cfg.Duration = secondsToDuration(d.Duration)
	cfg.Delay = secondsToDuration(d.Delay)
	if s.Duration != nil {
		cfg.Duration = secondsToDuration(*s.Duration)
	}
	if s.Delay != nil {
		cfg.Delay = secondsToDuration(*s.Delay)
	}

	easing := firstNonEmpty(s.Easing, d.Easing)
	if easing != "" {
		if cfg.Easing, err = fx.ParseEasing(easing); err != nil {
			return fx.Config{}, err
		}
	}

	fill := firstNonEmpty(s.FillMode, d.FillMode)
	if fill != "" {
		if cfg.FillMode, err = fx.ParseFillMode(fill); err != nil {
			return fx.Config{}, err
		}
	}

	cfg.RenderCompleteOnly = s.RenderCompleteOnly
	return cfg, nil
}

// Element builds a configured fx.Element for the spec.
func (s ElementSpec) Element(bridge fx.Bridge, d Defaults) (*fx.Element, error) {
	cfg, err := s.Config(d)
	if err != nil {
		return nil, err
	}

	opts := []fx.Option{fx.WithAttributes(s.Attributes), fx.WithID(s.ID)}
	if s.Content != "" {
		opts = append(opts, fx.WithChildren(fx.Text(s.Content)))
	}

	el := fx.New(bridge, opts...)
	el.Configure(cfg)
	return el, nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Float is a convenience for filling the optional numeric fields.
func Float(v float64) *float64 {
	return &v
}
