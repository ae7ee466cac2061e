package main

type uiState struct {
	mode       mode
	width      int
	height     int
	ready      bool
	noticeMsg  string
	noticeType string
	noticeSeq  int
	tickSeq    int
}
