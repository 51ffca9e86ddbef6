// Package loadpath turns the nearest Pathfile into load path entries.
//
// Resolve and AddPaths are the entry points a host calls once at startup:
//
//	r := loadpath.New(loadpath.Options{})
//	var lp loadpath.List
//	if err := r.AddPaths(&lp, "/opt/app/lib"); err != nil {
//	    return err
//	}
//
// Explicit paths always come first, followed by the Pathfile entries in file
// order (the Pathfile's own directory last unless excluded). A missing
// Pathfile is not an error: a single "Warning: ..." line is written to the
// warnings writer and only the explicit paths are returned. Malformed
// Pathfiles and missing entries are returned as errors.
package loadpath
