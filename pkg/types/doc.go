// Package types defines the domain entities, the Store and Backend
// interfaces, and the standard errors shared by the lantern components
// and the storage backends.
package types
