// Package streaming provides context-aware chunked copying of origin file
// bytes to HTTP responses.
//
// The bypass path of the image pipeline serves origin files verbatim,
// possibly to slow clients. Copy checks the request context between chunks
// so a client disconnect stops the copy promptly and the caller's deferred
// Close releases the file handle, and it flushes after each chunk so bytes
// reach the wire as they are produced.
package streaming
