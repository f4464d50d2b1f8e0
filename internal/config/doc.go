// Package config loads vangoui.json.
//
// Every field is optional; missing values take defaults after load and
// Validate reports out-of-range values as E122.
//
//	{
//	  "server": {"host": "localhost", "port": 3000, "shutdownTimeout": "10s"},
//	  "live": {"readTimeout": "1m0s", "writeTimeout": "10s", "heartbeatInterval": "30s"},
//	  "toast": {"maxToasts": 5, "position": "bottom-right"},
//	  "log": {"level": "info", "format": "json"},
//	  "metrics": {"namespace": "vangoui"},
//	  "export": {"output": "dist"},
//	  "publish": {"bucket": "design-docs", "prefix": "vangoui/", "region": "eu-west-1"}
//	}
//
// # Usage
//
//	cfg, err := config.Find(".")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	logger := cfg.Logger(os.Stderr)
package config
