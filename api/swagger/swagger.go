package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "School Forum API",
        "description": "Forum backend with moderation and class roster management",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Login and registration"},
        {"name": "Posts", "description": "Forum posts and replies"},
        {"name": "Moderation", "description": "Block/validate workflow"},
        {"name": "Classes", "description": "Teacher-owned class rosters"},
        {"name": "Students", "description": "Student directory"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/login-check-student": {
            "post": {
                "tags": ["Auth"],
                "summary": "Student login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Credentials"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/login-check-teacher": {
            "post": {
                "tags": ["Auth"],
                "summary": "Teacher login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Credentials"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/login-check-admin": {
            "post": {
                "tags": ["Auth"],
                "summary": "Admin login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Credentials"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/sign-up": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a new account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SignUpRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/post-upload": {
            "post": {
                "tags": ["Posts"],
                "summary": "Create a post",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PostUploadRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/post-list": {
            "get": {
                "tags": ["Posts"],
                "summary": "List visible posts",
                "parameters": [
                    {"name": "requester_school_id", "in": "query", "type": "string"},
                    {"name": "show_pending", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/post-by-category": {
            "get": {
                "tags": ["Posts"],
                "summary": "List visible posts in a category",
                "parameters": [
                    {"name": "category", "in": "query", "required": true, "type": "string"},
                    {"name": "requester_school_id", "in": "query", "type": "string"},
                    {"name": "show_pending", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/my-post-list": {
            "post": {
                "tags": ["Posts"],
                "summary": "List the caller's own posts",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"author_id": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/get-post": {
            "get": {
                "tags": ["Posts"],
                "summary": "Fetch a single post",
                "parameters": [
                    {"name": "post_id", "in": "query", "required": true, "type": "integer"},
                    {"name": "requester_school_id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/get-post-replies": {
            "get": {
                "tags": ["Posts"],
                "summary": "List a post's replies",
                "parameters": [
                    {"name": "post_id", "in": "query", "required": true, "type": "integer"},
                    {"name": "requester_school_id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/post-reply": {
            "post": {
                "tags": ["Posts"],
                "summary": "Create a reply",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PostReplyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/block-post": {
            "post": {
                "tags": ["Moderation"],
                "summary": "Block a post",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PostModerationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/validate-post": {
            "post": {
                "tags": ["Moderation"],
                "summary": "Validate a post",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PostModerationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/block-reply": {
            "post": {
                "tags": ["Moderation"],
                "summary": "Block a reply",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReplyModerationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/validate-reply": {
            "post": {
                "tags": ["Moderation"],
                "summary": "Validate a reply",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReplyModerationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/pending-content": {
            "get": {
                "tags": ["Moderation"],
                "summary": "List unvalidated posts and replies",
                "parameters": [
                    {"name": "requester_school_id", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/get-classes": {
            "get": {
                "tags": ["Classes"],
                "summary": "List a teacher's classes",
                "parameters": [
                    {"name": "school_id", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/create-class": {
            "post": {
                "tags": ["Classes"],
                "summary": "Create a class",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"creator_id": {"type": "string"}, "name": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/delete-class": {
            "post": {
                "tags": ["Classes"],
                "summary": "Delete a class",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"class_id": {"type": "integer"}, "creator_id": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/rename-class": {
            "post": {
                "tags": ["Classes"],
                "summary": "Rename a class",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"class_id": {"type": "integer"}, "creator_id": {"type": "string"}, "new_name": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/add-student-to-class": {
            "post": {
                "tags": ["Classes"],
                "summary": "Add a student to a class roster",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MembershipRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/remove-student-from-class": {
            "post": {
                "tags": ["Classes"],
                "summary": "Remove a student from a class roster",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MembershipRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/search-students": {
            "get": {
                "tags": ["Students"],
                "summary": "Search students by name or school id",
                "parameters": [
                    {"name": "name", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/get-student-info": {
            "get": {
                "tags": ["Students"],
                "summary": "Fetch a student's profile",
                "parameters": [
                    {"name": "school_id", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/get-student-post-count": {
            "get": {
                "tags": ["Students"],
                "summary": "Count a student's posts",
                "parameters": [
                    {"name": "author_id", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "Credentials": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "SignUpRequest": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "password": {"type": "string"},
                "given_name": {"type": "string"},
                "surname": {"type": "string"},
                "age": {"type": "string"},
                "school_id": {"type": "string"},
                "intended_major": {"type": "string"},
                "email": {"type": "string"},
                "class": {"type": "string"}
            }
        },
        "PostUploadRequest": {
            "type": "object",
            "properties": {
                "upload_time": {"type": "string"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "author_id": {"type": "string"},
                "anonymous": {"type": "boolean"},
                "category": {"type": "string"}
            }
        },
        "PostReplyRequest": {
            "type": "object",
            "properties": {
                "upload_time": {"type": "string"},
                "parent_post_id": {"type": "integer"},
                "content": {"type": "string"},
                "author_id": {"type": "string"},
                "anonymous": {"type": "boolean"}
            }
        },
        "PostModerationRequest": {
            "type": "object",
            "properties": {
                "post_id": {"type": "integer"},
                "requester_school_id": {"type": "string"}
            }
        },
        "ReplyModerationRequest": {
            "type": "object",
            "properties": {
                "reply_id": {"type": "integer"},
                "requester_school_id": {"type": "string"}
            }
        },
        "MembershipRequest": {
            "type": "object",
            "properties": {
                "class_id": {"type": "integer"},
                "school_id": {"type": "string"}
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
