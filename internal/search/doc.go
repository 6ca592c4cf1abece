// Package search submits names to a web search engine through a real browser
// and returns the visible text of the result page.
//
// A Browser launches one Chrome session per search. The session is an owned
// resource: Browser.Search opens it, runs the query and closes it on every
// path, including failures and context cancellation. Browser.Close closes any
// session still open, which is what an application calls on shutdown.
//
// # Query Flow
//
//  1. Launch Chrome with automation hints suppressed
//  2. Navigate to the search engine URL and wait a random settle delay
//  3. Type the query into the "q" field and press Enter
//  4. Wait a random results delay
//  5. Extract the visible body text and truncate it to the result limit
//
// # Prerequisites
//
// Chrome or Chromium must be installed and discoverable on PATH.
package search
