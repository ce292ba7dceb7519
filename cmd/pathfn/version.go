package main

// Overridden at release time with -ldflags "-X main._version=...".
var _version = "(unreleased)"
