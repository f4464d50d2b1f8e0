// Package errors provides structured, actionable error messages.
//
// Every error raised at a boundary (configuration loading, the live
// protocol, export and publish) carries a registered code that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Error Categories
//
//   - runtime: misuse detected while components run (missing provider)
//   - component: invalid component configuration
//   - protocol: malformed live session messages
//   - config: vangoui.json problems
//   - cli: export and publish failures
//
// # Usage
//
//	err := errors.New("E141").
//	    WithSuggestion("Run vangoui from your project root or pass --config")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E141: Configuration file not found
//	//
//	//   No vangoui.json was found in the current directory or any parent directory.
//	//
//	//   Hint: Run vangoui from your project root or pass --config
//	//
//	//   Learn more: https://vango.dev/docs/ui/errors/E141
package errors
