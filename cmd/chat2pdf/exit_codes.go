package main

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
	exitUsage   = 2
)
