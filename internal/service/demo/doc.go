// Package demo runs a scripted walk through the presence lifecycle for the
// presence-demo binary.
package demo
