/*

Process of parsing

Expression Text (yaml flow lists) ->
	read ->
Generic S-Expression Tree (sexp) ->
	parse ->
Abstract Syntax Tree (ast) ->
	format ->
Canonical Expression Text

Evaluation of the tree is up to the consumer.

*/
package lam
