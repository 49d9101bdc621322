/*
Package cssom provides the interface between inline styling and a CSS
parser.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. For inline
styling we need just a small part of it: turning the text of a `style`
attribute into an ordered list of declarations.

CSS handling is de-coupled by introducing interface DeclarationParser.
Concrete implementations may be found in sub-packages (see package
douceuradapter).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
