package common

// UnknownStr is the String() value of enum constants outside their declared range.
const UnknownStr = "unknown"
