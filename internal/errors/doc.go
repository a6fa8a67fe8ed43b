// Package errors provides coded, actionable errors for kiln.
//
// Every failure kiln reports outside of a plain I/O error carries a code
// ("K101") that maps to a registered template with a category, a short
// message, a longer explanation and a documentation link.
//
// # Categories
//
//   - render: misuse of the rendering pipeline (K001-K099)
//   - content: node construction and missing resources (K100-K119)
//   - config: kiln.json problems (K120-K139)
//   - document: page document parsing and compilation (K140-K159)
//   - publish: output sinks (K160-K179)
//   - cli: command line usage (K180-K199)
//
// # Usage
//
//	err := errors.New("K141").
//	    WithLocation("pages/index.hcl", 12, 3).
//	    WithDetail(`unknown element type "colum"`).
//	    WithSuggestion(`Did you mean "column"?`)
//
//	fmt.Fprint(os.Stderr, err.Format())
package errors
