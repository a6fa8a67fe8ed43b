// Package config provides configuration parsing for kiln projects.
//
// The configuration is stored in kiln.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "site": {
//	    "name": "Field Notes",
//	    "locale": "en",
//	    "assetPrefix": "/assets/",
//	    "manifest": "assets/manifest.json"
//	  },
//	  "build": {
//	    "output": "dist",
//	    "pages": "pages"
//	  },
//	  "preview": {
//	    "port": 4000,
//	    "liveReload": true,
//	    "pollInterval": "500ms"
//	  },
//	  "publish": {
//	    "bucket": "notes-site",
//	    "prefix": "www/",
//	    "region": "eu-west-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Preview:", cfg.PreviewURL())
package config
