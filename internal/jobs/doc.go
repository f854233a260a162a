// Package jobs implements background processing for the Quiver API.
//
// Jobs run independently of HTTP request handling, are started from
// cmd/server with Start(), and drain cleanly on Stop(). The LinkChecker
// sweeps bookmarks on an interval and also serves on-demand checks
// enqueued by POST /v1/bookmarks/{bookmarkId}/check.
//
// Jobs log errors and carry on; they never crash the application.
package jobs
