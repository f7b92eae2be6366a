package api

import (
	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk-backend/usecases"
)

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe(conf))
	r.POST("/register", handleRegister(uc))
	r.POST("/login", handleLogin(uc))

	router := r.Use(credentialsMiddleware(uc))

	router.GET("/profile", handleProfile(uc))

	router.GET("/tables/:table/records", handleListRecords(uc))
	router.POST("/tables/:table/records", handleCreateRecord(uc))
	router.GET("/tables/:table/records/:record_id", handleGetRecord(uc))
	router.PATCH("/tables/:table/records/:record_id", handlePatchRecord(uc))
	router.DELETE("/tables/:table/records/:record_id", handleDeleteRecord(uc))

	router.POST("/tables/:table/append", handleAppendRecord(uc))
	router.POST("/tables/:table/reorder", handleReorder(uc))

	router.POST("/classes", handlePostClass(uc))
	router.GET("/classes/:class_id/instructors", handleListClassInstructors(uc))
	router.POST("/classes/:class_id/instructors/:instructor_id", handleLinkInstructor(uc))
	router.DELETE("/classes/:class_id/instructors/:instructor_id", handleUnlinkInstructor(uc))

	router.GET("/audit", handleListAuditEntries(uc))

	router.POST("/admin/schema-cache/refresh", adminOnlyMiddleware(), handleRefreshSchemaCache(uc))
}
