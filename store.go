package webcompile

// Store persists small pieces of compiler state between runs, such as
// the active preset and the build key of the last completed compile.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

const (
	// StoreKeyCompileMode holds the active build preset shortcut.
	StoreKeyCompileMode = "webcompile_mode"

	// StoreKeyBuildPrefix prefixes the per-target entries holding the
	// build key of the last completed compile, e.g.
	// "webcompile_buildkey_js".
	StoreKeyBuildPrefix = "webcompile_buildkey_"
)
