/*
Package appstub is a launcher stub that finds its own installation directory and hands
execution over to a companion script run by a fixed interpreter.

The project has three main source packages:
`cmd`: the appstub launcher and the elevate, cliprelay and consent helpers.
`internal`: Private application and library code.
`pkg`: Library code that's ok to use by external applications
*/
package appstub
