package tui

import "headliner/internal/model"

type newsLoadedMsg struct {
	data model.NewsData
}

type newsErrMsg struct {
	err error
}

type openErrMsg struct {
	err error
}
