// Package toolbar resolves toolbar item identifiers into button
// descriptors and organizes them into visually separated groups.
//
// A Registry owns the default catalog. It is built once, on first use,
// and is safe to share between goroutines:
//
//	reg := toolbar.NewRegistry(toolbar.WithTranslator(catalog.Translator("en-US")))
//	groups := reg.Group([]toolbar.Spec{
//	    toolbar.ExplicitGroup{toolbar.Ref("heading"), toolbar.Ref("bold")},
//	    toolbar.Ref("italic"),
//	    toolbar.Ref("strike"),
//	}, false)
//
// Consecutive single specs share a group; an ExplicitGroup always forms
// its own group and ends the run of singles before it.
//
// Transformations such as Retoggle and ApplyState return new groups and
// never modify their input.
package toolbar
