package main

// Version is overridden at release time via -ldflags.
var Version = "dev"
