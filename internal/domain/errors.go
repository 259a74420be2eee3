package domain

import "errors"

var (
	// ErrFileTypeNotAllowed is returned when an uploaded file's type is not accepted
	ErrFileTypeNotAllowed = errors.New("file type not supported (accepted: pdf, csv, xls, xlsx, doc, docx, json, txt)")

	// ErrFileTooLarge is returned when an uploaded file exceeds the size limit
	ErrFileTooLarge = errors.New("file exceeds the 50 MiB size limit")

	// ErrMultipleFiles is returned when more than one file is submitted at once
	ErrMultipleFiles = errors.New("only one file may be uploaded at a time")

	// ErrExtractionFailure is returned when the extraction service call fails
	ErrExtractionFailure = errors.New("menu extraction failed")

	// ErrSessionNotFound is returned when no editing session exists for the given ID
	ErrSessionNotFound = errors.New("editing session not found")

	// ErrNoParseResult is returned when an operation needs a parse result but none exists
	ErrNoParseResult = errors.New("no parsed menu in session")

	// ErrNotEditing is returned when a mutating operation is invoked outside edit mode
	ErrNotEditing = errors.New("not in edit mode")

	// ErrCategoryExists is returned when creating a category whose name is already in use
	ErrCategoryExists = errors.New("category already exists")

	// ErrBlankCategory is returned when a category operation is given a blank name
	ErrBlankCategory = errors.New("category name cannot be blank")

	// ErrSelfMerge is returned when merging a category into itself
	ErrSelfMerge = errors.New("cannot merge a category into itself")

	// ErrIndexOutOfRange is returned when an item index does not point into the working set
	ErrIndexOutOfRange = errors.New("item index out of range")

	// ErrMenuNameRequired is returned when a new-menu import has no menu name
	ErrMenuNameRequired = errors.New("menu name is required for a new menu import")

	// ErrTargetMenuRequired is returned when an existing-menu import has no target
	ErrTargetMenuRequired = errors.New("target menu is required for an existing menu import")

	// ErrInvalidImportMode is returned when an import specifies an unknown mode
	ErrInvalidImportMode = errors.New("import mode must be \"new\" or \"existing\"")

	// ErrImportFailure is returned when the import-commit collaborator rejects the commit
	ErrImportFailure = errors.New("menu import failed")

	// ErrMenuAPIFailure is returned when the menu-storage API request fails
	ErrMenuAPIFailure = errors.New("menu API request failed")
)
