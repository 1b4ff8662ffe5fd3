// Package config provides configuration loading, merging, and validation
// facilities for docsync.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources override later ones; zero fields fall through):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetConfig].
package config
