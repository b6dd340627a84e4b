// Package server wires the account service together and hosts its HTTP API.
package server
