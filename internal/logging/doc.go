// Package logging configures zerolog for the json-mapper CLI.
package logging
