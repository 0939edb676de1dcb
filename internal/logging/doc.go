// Package logging provides leveled logging on top of the standard library
// logger.
//
// The level is read once from the environment: DEBUG=true (or 1/yes/on)
// forces debug logging, otherwise LOG_LEVEL selects one of debug, info,
// warn, or error. The default is info.
//
// Messages are tagged with their level:
//
//	logging.Debug("cache probe for %s", id)  // [DEBUG] cache probe for ...
//	logging.Warn("slow transcode: %v", d)    // [WARN] slow transcode: ...
package logging
