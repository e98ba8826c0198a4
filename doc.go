// Package env abstracts access to process environment variables, so that
// code which depends on them can be tested against a private, in-memory
// environment instead of the shared process one.
//
// Code that reads the environment directly is fragile to test: the
// process table is global mutable state, so tests pollute each other and
// depend on the machine they run on. This package declares the
// Environment interface, implemented by two providers: osenv.Env, which
// delegates to the real process environment, and memenv.Env, which
// simulates one in memory. Calling code receives the provider via
// dependency injection, and each test constructs its own memenv.Env so
// its variables are fully isolated.
//
// For example, an application that looks up the location of its
// configuration file, falling back to a default:
//
//	func configLocation(e env.Environment) string {
//		return env.GetDefault(e, "CONFIG_LOCATION", "/etc/my_app/service.conf")
//	}
//
//	// production
//	loc := configLocation(osenv.New())
//
//	// test
//	fake := memenv.New()
//	fake.SetVar("CONFIG_LOCATION", "/a/user/specified/location")
//	loc := configLocation(fake)
//
// Both providers satisfy the same behavioral contract, verified by the
// shared suite in the envtest package.
package env
