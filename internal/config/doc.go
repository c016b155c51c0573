// Package config provides configuration loading, merging, and validation
// facilities for the cookbook client.
//
// Configuration is assembled from multiple sources. Each source only fills
// the fields left empty by the sources before it:
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (JSON or YAML, chosen by extension)
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
