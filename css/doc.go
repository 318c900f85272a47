/*
Package css provides typed values for CSS properties.

CSS values are plentyful and some of them are complicated. Style maps
accept plain strings for every property, but for dimensions this package
offers an option type, which may be inspected with pattern matching and
renders as a CSS value.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css
