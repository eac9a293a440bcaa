package config

// SourceFileExt is the canonical extension for term files.
const SourceFileExt = ".lam"

// DefaultMaxSteps is the reduction budget used when neither funlam.yaml
// nor --max-steps sets one. 0 means unbounded: a diverging term runs
// until interrupted.
const DefaultMaxSteps = 0

// Version is reported by --version.
const Version = "0.1.0"
