package types

// Version is the stencil version. Overwritten by -ldflags at release build.
var Version = "dev"
