// Package fileutil holds small file copy helpers shared by the collection
// routing code.
package fileutil
