// Package config loads settings for the shop CLI.
//
// Values are layered, later sources winning:
//
//  1. defaults (LoadDefaults)
//  2. SHOP_* variables, with an optional .env file loaded first
//  3. a JSON file passed with -c or -config
//  4. the -a, -i, -l and -v flags
//
// Example file:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "ping_timeout": "1s",
//	  "log_format": "console",
//	  "log_level": "debug"
//	}
package config
