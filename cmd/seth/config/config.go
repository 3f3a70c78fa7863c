package config

// Version is set at build time through -ldflags.
var Version = "dev"

const Copyright = "Copyright (c) the seth authors"
