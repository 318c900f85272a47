/*
Package cssom defines the view of stylesheets shared by the other packages.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Rules
generated from style maps (see package style/rules) as well as rules
parsed from CSS text (see package douceuradapter) are accessed through
the interfaces of this package. This allows tests and debugging helpers
to inspect generated and live stylesheets alike.

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. Concrete implementations may be found in other
packages of this module.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
