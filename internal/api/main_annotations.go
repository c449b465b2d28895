package api

// @title           Recrutas API
// @version         1.0
// @description     Read and set the visitor's display theme preference.
// @BasePath        /api/v1
