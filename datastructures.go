/*
Package datastructures exists solely to aid consumers of the go-arraylist
library when using dependency managers.  Importing this package pulls in
every public subpackage, so tools that resolve imports package by package
see the whole library.

	adt   the List abstract data type
	list  ArrayList and its goroutine-safe wrapper SafeList
*/
package datastructures

import (
	_ "github.com/blastbao/go-arraylist/adt"
	_ "github.com/blastbao/go-arraylist/list"
)
