// Package config assembles the mazewalk runtime configuration.
//
// Sources, lowest precedence first:
//
//  1. Default()
//  2. an optional HCL file (LoadFile / Parse)
//  3. environment variables, optionally seeded from a .env file (FromEnv,
//     LoadDotenv)
//  4. command-line flags, applied by the caller
//
// HCL file layout:
//
//	log_level  = "debug"   # debug | info | warn | error
//	log_format = "json"    # text | json
//	pad_jagged = true      # pad short rows with walls instead of rejecting
//	max_steps  = 100000    # 0 disables the limit
//
//	render {
//	  wall = "#"
//	  open = defaults.open # defaults.wall, defaults.open, defaults.path
//	  path = "*"
//	}
//
// Environment variables: MAZEWALK_CONFIG, MAZEWALK_LOG_LEVEL,
// MAZEWALK_LOG_FORMAT, MAZEWALK_PAD_JAGGED, MAZEWALK_MAX_STEPS.
package config
