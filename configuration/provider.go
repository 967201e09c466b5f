package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrUnsupportedProviderMethod is returned by the methods of the flag provider that koanf does not need.
var ErrUnsupportedProviderMethod = ierrors.New("pflag provider does not support this method")

// lowerPosflag is a koanf provider that reads the flags of a pflag FlagSet and lower cases their names.
type lowerPosflag struct {
	delim   string
	flagSet *flag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a provider that turns the flags of the given FlagSet into a nested config map, where the
// nesting of keys is defined by delim ("list.values" becomes {list: {values: ...}}).
//
// Flags that were not changed on the command line only contribute their default value if the given Koanf instance does
// not know the key yet, so defaults never overwrite values that were loaded from a file.
func lowerPosflagProvider(flagSet *flag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagSet: flagSet,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	flat := make(map[string]interface{})

	p.flagSet.VisitAll(func(f *flag.Flag) {
		key := strings.ToLower(f.Name)
		if !f.Changed && (p.ko == nil || p.ko.Exists(key)) {
			return
		}

		flat[key] = p.flagValue(f)
	})

	return maps.Unflatten(flat, p.delim), nil
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, ErrUnsupportedProviderMethod
}

// Watch is not supported by the pflag provider.
func (p *lowerPosflag) Watch(func(event interface{}, err error)) error {
	return ErrUnsupportedProviderMethod
}

// flagValue returns the typed value of the given flag.
func (p *lowerPosflag) flagValue(f *flag.Flag) interface{} {
	switch f.Value.Type() {
	case "int64":
		value, _ := p.flagSet.GetInt64(f.Name)

		return value
	case "int", "int8", "int16", "int32":
		return int64(p.intValue(f))
	case "bool":
		value, _ := p.flagSet.GetBool(f.Name)

		return value
	case "float64":
		value, _ := p.flagSet.GetFloat64(f.Name)

		return value
	case "float32":
		value, _ := p.flagSet.GetFloat32(f.Name)

		return float64(value)
	case "stringSlice":
		value, _ := p.flagSet.GetStringSlice(f.Name)

		return value
	case "intSlice":
		value, _ := p.flagSet.GetIntSlice(f.Name)

		return value
	default:
		return f.Value.String()
	}
}

// intValue returns the value of a flag with a sized int type.
func (p *lowerPosflag) intValue(f *flag.Flag) int {
	switch f.Value.Type() {
	case "int8":
		value, _ := p.flagSet.GetInt8(f.Name)

		return int(value)
	case "int16":
		value, _ := p.flagSet.GetInt16(f.Name)

		return int(value)
	case "int32":
		value, _ := p.flagSet.GetInt32(f.Name)

		return int(value)
	default:
		value, _ := p.flagSet.GetInt(f.Name)

		return value
	}
}
