// Package router provides stack-based screen navigation.
//
// A Router holds a route table, built once at startup, and a back stack of
// resolved route instances. The last entry on the stack is the visible
// screen. Screens are render callbacks; they report navigation intents back
// to the router through Navigate, NavigateTo, Pop and PopTo.
//
// # Basic Usage
//
//	const (
//	    RouteList   = "List"
//	    RouteDetail = "Detail/{id}"
//	)
//
//	r := router.New()
//
//	r.Register(RouteList, func(params router.Params) any {
//	    return listView()
//	})
//
//	r.Register(RouteDetail, func(params router.Params) any {
//	    return detailView(params["id"])
//	})
//
//	r.Start(RouteList)
//
//	// On selection
//	r.Navigate(RouteDetail, router.Params{"id": "42"})
//	// or by path
//	r.NavigateTo("Detail/42")
//
//	// On back
//	if err := r.Pop(); router.IsEmptyStack(err) {
//	    // back on the start screen: exit
//	}
//
// # Parameters
//
// Patterns are "/"-separated segments; a segment written as {name} is a
// parameter slot. A slot with no value, or a blank one, resolves to
// EmptyValue instead of failing.
//
// # Resume State
//
// Frontends can attach state (focus, scroll position) to the visible entry
// with SetResume. The entry keeps it while covered, so popping back returns
// the same entry with its state rather than a fresh one.
package router
