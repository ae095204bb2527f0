// Package config provides configuration management for cinematch.
//
// Configuration is loaded from YAML files and merged in a fixed order, with
// later sources overriding earlier ones:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/cinematch/config.yaml)
//  3. Project configuration (./.cinematch/config.yaml)
//
// A file passed with --config replaces steps 2 and 3.
//
// # Configuration Structure
//
//	service:
//	  baseURL: "http://127.0.0.1:5001"   # ${VAR} and $VAR are expanded
//	  timeout: 10s
//	suggestions:
//	  limit: 7
//	cache:
//	  ttl: 5m                            # 0 disables the recommendation cache
//	breaker:
//	  failureThreshold: 5
//	  openTimeout: 30s
//	update:
//	  repository: "owner/cinematch"      # used by self-update
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Service.BaseURL)
package config
