package di

// Provider configures an injector to return a value for a token. The concrete
// provider shapes are interpreted by the injector implementation, not here.
type Provider interface{}

type notFound struct{}

// THROW_IF_NOT_FOUND is the sentinel notFoundValue that makes Get panic when
// the token has no provider, instead of returning a default.
var THROW_IF_NOT_FOUND interface{} = notFound{}

// Injector is the dependency injection contract the linker surfaces consume.
// Concrete injector implementations live with the runtime.
type Injector interface {
	// Get retrieves an instance from the injector based on the provided
	// token. Returns notFoundValue when the token is not provided, or panics
	// when notFoundValue is THROW_IF_NOT_FOUND.
	Get(token interface{}, notFoundValue interface{}) interface{}
}

// NullInjector is the injector at the top of every injector tree: it provides
// nothing.
type NullInjector struct{}

func (NullInjector) Get(token interface{}, notFoundValue interface{}) interface{} {
	if notFoundValue == THROW_IF_NOT_FOUND {
		panic("NullInjectorError: No provider for " + stringifyToken(token))
	}
	return notFoundValue
}

func stringifyToken(token interface{}) string {
	if named, ok := token.(interface{ String() string }); ok {
		return named.String()
	}
	return "unknown token"
}
