package kgtool

// Version of kgtool, filled in at link time for release builds
var Version string

// EnableDebug is flipped on by debug builds to expose profiling flags
var EnableDebug = false
