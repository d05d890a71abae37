package model

// Version is the dashcheck release.
const Version = "0.3.0"

// ScannerVersion is the Dash license tool release this wrapper was last
// validated against. --update compares it with the latest GitHub tag.
const ScannerVersion = "1.1.0"
