// Package config loads editorui.json or editorui.yaml.
//
// # Configuration File Structure
//
//	{
//	  "toolbarItems": [["heading", "bold", "italic"], "hr", {"name": "mine", "className": "my-icon"}],
//	  "hideScrollSync": false,
//	  "language": "ko-KR",
//	  "i18nFile": "i18n.yaml",
//	  "preview": {
//	    "host": "localhost",
//	    "port": 7070,
//	    "shutdownTimeout": "5s"
//	  },
//	  "metrics": {
//	    "namespace": "editorui"
//	  }
//	}
//
// The YAML form has the same keys. A configuration can also be fetched
// from S3 with LoadS3.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	specs, err := cfg.ToolbarSpecs()
package config
