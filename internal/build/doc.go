// Package build renders a kiln project's page documents.
//
// A Builder is created from the project configuration. It loads the asset
// manifest and include snippets once and renders pages on demand, which
// is what the preview server does, or renders every page under the pages
// directory into a publish.Sink:
//
//	builder, err := build.New(cfg, build.Options{Logger: logger})
//	if err != nil {
//	    return err
//	}
//	sink, err := publish.NewDirSink(cfg.OutputPath())
//	if err != nil {
//	    return err
//	}
//	result, err := builder.Build(ctx, sink)
//
// # Output Structure
//
// Keys mirror the pages directory, with an .html extension:
//
//	pages/                 dist/
//	├── index.hcl    →     ├── index.html
//	└── blog/              └── blog/
//	    └── first.yaml         └── first.html
package build
