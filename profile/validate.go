package profile

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"cssync/codec"
)

// keywordTags binds validation tags used on profile fields to keyword sets.
var keywordTags = map[string]codec.KeywordSet{
	"text_align":   codec.TextAligns,
	"list_style":   codec.ListStyles,
	"border_style": codec.BorderStyles,
}

var profileValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New()

	// report fields by their yaml names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		return name
	})
	// sizes are checked by their numeric value, none is zero
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		s, ok := f.Interface().(codec.Size)
		if !ok || s.IsNone() {
			return 0.0
		}
		return s.Value
	}, codec.Size{})
	v.RegisterStructValidation(checkBorder, codec.Border{})

	for tag, set := range keywordTags {
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return set.Contains(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}
	if err := v.RegisterValidation("font_family", func(fl validator.FieldLevel) bool {
		return codec.FormatFontFamily(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	return v
})

func checkBorder(sl validator.StructLevel) {
	b := sl.Current().Interface().(codec.Border)
	if b.Width != nil && !b.Width.IsNone() && b.Width.Value < 0 {
		sl.ReportError(b.Width.Value, "width", "Width", "gte", "0")
	}
	if b.Style != nil && !codec.BorderStyles.Contains(*b.Style) {
		sl.ReportError(*b.Style, "style", "Style", "border_style", "")
	}
}

// Validate checks values which cannot be expressed by types alone: keywords
// must belong to their sets, lengths and line heights must not be negative.
// All problems are reported at once.
func (p *Profile) Validate() error {
	err := profileValidator().Struct(p)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var out error
	for _, fe := range verrs {
		out = multierr.Append(out, fieldError(fe))
	}
	return out
}

var headingIndex = regexp.MustCompile(`^headings\[(\d)\]`)

// fieldError turns validator namespace "Profile.headings[1].text_align" into
// the profile path "headings.h2.text_align".
func fieldError(fe validator.FieldError) error {
	_, name, _ := strings.Cut(fe.Namespace(), ".")
	if m := headingIndex.FindStringSubmatch(name); m != nil {
		name = "headings." + HeadingSelector(int(m[1][0]-'0')+1) + name[len(m[0]):]
	}

	switch tag := fe.Tag(); {
	case tag == "gte":
		return fmt.Errorf("%s: negative value %v", name, fe.Value())
	case tag == "font_family":
		return fmt.Errorf("%s: empty font family", name)
	case keywordTags[tag] != nil:
		return fmt.Errorf("%s: %q is not one of %v", name, fe.Value(), []string(keywordTags[tag]))
	default:
		return fmt.Errorf("%s: failed %q validation", name, tag)
	}
}
