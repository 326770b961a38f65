// Package screens wires the three demo screens to a router.
//
// Each screen is a render callback that turns the resolved route parameters
// into a frontend-neutral View. Buttons on a View call back into the router,
// so frontends only need to draw the View and forward presses.
package screens

import (
	"strings"

	"github.com/BrandonKowalski/navigator/pkg/navigator/router"
)

// Route patterns of the demo.
const (
	FirstScreen  = "FirstScreen"
	SecondScreen = "SecondScreen/{" + SecondScreenValue + "}"
	ThirdScreen  = "ThirdScreen"
)

// SecondScreenValue is the parameter slot of SecondScreen.
const SecondScreenValue = "customValue"

// SecondScreenPath returns the concrete path to SecondScreen for a value.
// Blank input maps to the router's placeholder value.
func SecondScreenPath(customValue string) string {
	if strings.TrimSpace(customValue) == "" {
		customValue = router.EmptyValue
	}
	return "SecondScreen/" + customValue
}
