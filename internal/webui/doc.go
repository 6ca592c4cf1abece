// Package webui serves the name viewer as a local web page.
//
// The page lists the loaded names with their search status, filters them as
// the user types, and shows the text of the most recent search. State
// changes made through any request are pushed to every open page over
// Server-Sent Events on /api/events, so the page never polls.
package webui
