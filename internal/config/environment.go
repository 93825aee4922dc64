package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/drone/envsubst"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// getEnv resolves the variables referenced by configuration values,
// replaced in tests
var getEnv = os.Getenv

// expand substitutes ${VAR}, ${VAR:-default} and friends in raw
func expand(raw string) (string, error) {
	value, err := envsubst.Eval(raw, getEnv)
	if err != nil {
		return "", errors.Wrapf(err, "could not interpolate '%s'", raw)
	}

	return value, nil
}

// interpolated decodes a scalar as a string, expands it and parses
// the result
func interpolated[T any](unmarshal func(any) error, parse func(string) (T, error)) (T, error) {
	var (
		raw  string
		zero T
	)

	if err := unmarshal(&raw); err != nil {
		return zero, errors.WithStack(err)
	}

	value, err := expand(raw)
	if err != nil {
		return zero, errors.WithStack(err)
	}

	parsed, err := parse(strings.TrimSpace(value))
	if err != nil {
		return zero, errors.Wrapf(err, "invalid value '%s'", value)
	}

	return parsed, nil
}

type InterpolatedString string

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (is *InterpolatedString) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string

	if err := unmarshal(&raw); err != nil {
		return errors.WithStack(err)
	}

	value, err := expand(raw)
	if err != nil {
		return errors.WithStack(err)
	}

	*is = InterpolatedString(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedString)

type InterpolatedInt int

func (ii *InterpolatedInt) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := interpolated(unmarshal, strconv.Atoi)
	if err != nil {
		return errors.WithStack(err)
	}

	*ii = InterpolatedInt(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedInt)

type InterpolatedFloat float64

func (ifl *InterpolatedFloat) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := interpolated(unmarshal, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	if err != nil {
		return errors.WithStack(err)
	}

	*ifl = InterpolatedFloat(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedFloat)

// InterpolatedBool is false when its variable expands to an empty string
type InterpolatedBool bool

func (ib *InterpolatedBool) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := interpolated(unmarshal, func(s string) (bool, error) {
		if s == "" {
			return false, nil
		}

		return strconv.ParseBool(s)
	})
	if err != nil {
		return errors.WithStack(err)
	}

	*ib = InterpolatedBool(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedBool)

// InterpolatedMap holds free form options, such as provider settings.
// Every string leaf is expanded.
type InterpolatedMap struct {
	Data map[string]any
}

func (im *InterpolatedMap) UnmarshalYAML(unmarshal func(any) error) error {
	var data map[string]any

	if err := unmarshal(&data); err != nil {
		return errors.WithStack(err)
	}

	expanded, err := expandTree(data)
	if err != nil {
		return errors.WithStack(err)
	}

	im.Data, _ = expanded.(map[string]any)

	return nil
}

func (im *InterpolatedMap) MarshalYAML() (any, error) {
	return im.Data, nil
}

func expandTree(node any) (any, error) {
	switch typ := node.(type) {
	case map[string]any:
		for key, value := range typ {
			expanded, err := expandTree(value)
			if err != nil {
				return nil, errors.Wrapf(err, "key '%s'", key)
			}

			typ[key] = expanded
		}

	case []any:
		for idx, value := range typ {
			expanded, err := expandTree(value)
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", idx)
			}

			typ[idx] = expanded
		}

	case string:
		return expand(typ)
	}

	return node, nil
}

// InterpolatedStringSlice drops the items expanding to an empty string
type InterpolatedStringSlice []string

func (iss *InterpolatedStringSlice) UnmarshalYAML(unmarshal func(any) error) error {
	var raw []string

	if err := unmarshal(&raw); err != nil {
		return errors.WithStack(err)
	}

	values := make([]string, 0, len(raw))

	for _, r := range raw {
		value, err := expand(r)
		if err != nil {
			return errors.WithStack(err)
		}

		if value == "" {
			continue
		}

		values = append(values, value)
	}

	*iss = values

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedStringSlice)

// InterpolatedDuration accepts Go durations, a number of days ("7d")
// or a number of nanoseconds
type InterpolatedDuration time.Duration

func (id *InterpolatedDuration) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := interpolated(unmarshal, parseDuration)
	if err != nil {
		return errors.WithStack(err)
	}

	*id = InterpolatedDuration(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedDuration)

func (id *InterpolatedDuration) MarshalYAML() (any, error) {
	return time.Duration(*id).String(), nil
}

var _ yaml.InterfaceMarshaler = new(InterpolatedDuration)

func NewInterpolatedDuration(d time.Duration) *InterpolatedDuration {
	id := InterpolatedDuration(d)
	return &id
}

func parseDuration(s string) (time.Duration, error) {
	if days, found := strings.CutSuffix(s, "d"); found {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, errors.WithStack(err)
		}

		return time.Duration(n) * 24 * time.Hour, nil
	}

	duration, err := time.ParseDuration(s)
	if err == nil {
		return duration, nil
	}

	nanoseconds, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Errorf("'%s' is not a duration", s)
	}

	return time.Duration(nanoseconds), nil
}
