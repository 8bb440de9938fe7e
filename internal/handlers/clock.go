package handlers

import "time"

// timeNow is stubbed in tests that need a fixed reference date.
var timeNow = time.Now
