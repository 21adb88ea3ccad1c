// Package config loads and saves the compound.json project
// configuration used by the demo CLI.
package config
