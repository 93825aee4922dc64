package oauth2

import (
	"slices"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/markbates/goth"
	"github.com/pkg/errors"
)

var ErrProviderTypeNotRegistered = errors.New("provider type not registered")

type ProviderType string

// ProviderFactory creates a goth provider from decoded options
type ProviderFactory func(callbackURL string, options any) (goth.Provider, error)

var (
	registryMutex sync.RWMutex
	registry      = map[ProviderType]ProviderFactory{}
)

func RegisterProvider(providerType ProviderType, factory ProviderFactory) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	registry[providerType] = factory
}

func RegisteredProviders() []ProviderType {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	types := make([]ProviderType, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}

	slices.Sort(types)

	return types
}

func NewProvider(providerType ProviderType, callbackURL string, options any) (goth.Provider, error) {
	registryMutex.RLock()
	factory, exists := registry[providerType]
	registryMutex.RUnlock()

	if !exists {
		return nil, errors.Wrapf(ErrProviderTypeNotRegistered, "provider type '%s'", providerType)
	}

	provider, err := factory(callbackURL, options)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create provider '%s'", providerType)
	}

	return provider, nil
}

func decodeOptions(options any, result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:         nil,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(mapstructure.StringToSliceHookFunc(",")),
		Result:           result,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := decoder.Decode(options); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
