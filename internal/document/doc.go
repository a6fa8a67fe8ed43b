// Package document loads page documents and builds them into view trees.
//
// A page can be written in HCL or YAML; both parse into the same
// format-agnostic Document. Build then compiles the element tree into
// view nodes, with layout containers and modifiers taken from element
// properties.
//
// HCL pages nest element blocks labelled with their type. Expressions can
// read site values and use a few string functions:
//
//	title = "Home"
//
//	element "vstack" {
//	  spacing = "1rem"
//
//	  element "h1" {
//	    content = upper(site.name)
//	  }
//	  element "list" {
//	    element "text" { content = "one" }
//	    element "text" {
//	      content        = "two"
//	      row_background = "#eef"
//	    }
//	  }
//	}
//
// YAML pages list elements as single-key mappings. A scalar value is the
// element content, a sequence is its children:
//
//	title: Home
//	body:
//	  - vstack:
//	      spacing: 1rem
//	      children:
//	        - h1: Welcome
//	        - list:
//	            - text: one
//	            - text: {content: two, row_background: "#eef"}
package document
