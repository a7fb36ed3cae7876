// This file is part of mac-classic-rom-re.
//
// mac-classic-rom-re is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mac-classic-rom-re is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mac-classic-rom-re.  If not, see <https://www.gnu.org/licenses/>.

package names

// A-line trap names of the System 6 era, as documented in Inside
// Macintosh. Not exhaustive: the dispatch tables have room for many more
// traps than were ever documented and the unknowns are reported with
// placeholder names.

// OS traps occupy trap words 0xa000 to 0xa7ff.
var osTraps = Table{
	0xa000: "_Open",
	0xa001: "_Close",
	0xa002: "_Read",
	0xa003: "_Write",
	0xa004: "_Control",
	0xa005: "_Status",
	0xa006: "_KillIO",
	0xa007: "_GetVolInfo",
	0xa008: "_Create",
	0xa009: "_Delete",
	0xa00a: "_OpenRF",
	0xa00b: "_Rename",
	0xa00c: "_GetFileInfo",
	0xa00d: "_SetFileInfo",
	0xa00e: "_UnmountVol",
	0xa00f: "_MountVol",
	0xa010: "_Allocate",
	0xa011: "_GetEOF",
	0xa012: "_SetEOF",
	0xa013: "_FlushVol",
	0xa014: "_GetVol",
	0xa015: "_SetVol",
	0xa016: "_FInitQueue",
	0xa017: "_Eject",
	0xa018: "_GetFPos",
	0xa019: "_InitZone",
	0xa01b: "_SetZone",
	0xa01c: "_FreeMem",
	0xa01e: "_NewPtr",
	0xa01f: "_DisposePtr",
	0xa020: "_SetPtrSize",
	0xa021: "_GetPtrSize",
	0xa022: "_NewHandle",
	0xa023: "_DisposeHandle",
	0xa024: "_SetHandleSize",
	0xa025: "_GetHandleSize",
	0xa027: "_ReallocHandle",
	0xa029: "_HLock",
	0xa02a: "_HUnlock",
	0xa02b: "_EmptyHandle",
	0xa02c: "_InitApplZone",
	0xa02d: "_SetApplLimit",
	0xa02e: "_BlockMove",
	0xa02f: "_PostEvent",
	0xa030: "_OSEventAvail",
	0xa031: "_GetOSEvent",
	0xa032: "_FlushEvents",
	0xa033: "_VInstall",
	0xa034: "_VRemove",
	0xa035: "_OffLine",
	0xa036: "_MoreMasters",
	0xa038: "_WriteParam",
	0xa039: "_ReadDateTime",
	0xa03a: "_SetDateTime",
	0xa03b: "_Delay",
	0xa03c: "_CmpString",
	0xa03d: "_DrvrInstall",
	0xa03e: "_DrvrRemove",
	0xa03f: "_InitUtil",
	0xa040: "_ResrvMem",
	0xa041: "_SetFilLock",
	0xa042: "_RstFilLock",
	0xa043: "_SetFilType",
	0xa044: "_SetFPos",
	0xa045: "_FlushFile",
	0xa047: "_SetTrapAddress",
	0xa049: "_HPurge",
	0xa04a: "_HNoPurge",
	0xa04b: "_SetGrowZone",
	0xa04c: "_CompactMem",
	0xa04d: "_PurgeMem",
	0xa04e: "_AddDrive",
	0xa050: "_RelString",
	0xa051: "_ReadXPRam",
	0xa052: "_WriteXPRam",
	0xa054: "_UprString",
	0xa055: "_StripAddress",
	0xa05d: "_SwapMMUMode",
	0xa060: "_FSDispatch",
	0xa061: "_MaxBlock",
	0xa063: "_MaxApplZone",
	0xa064: "_MoveHHi",
	0xa065: "_StackSpace",
	0xa069: "_HGetState",
	0xa06a: "_HSetState",
	0xa06e: "_SlotManager",
	0xa06f: "_SlotVInstall",
	0xa070: "_SlotVRemove",
}

// Toolbox traps occupy trap words 0xa800 to 0xabff.
var toolboxTraps = Table{
	0xa850: "_InitCursor",
	0xa851: "_SetCursor",
	0xa852: "_HideCursor",
	0xa853: "_ShowCursor",
	0xa855: "_ShieldCursor",
	0xa856: "_ObscureCursor",
	0xa86e: "_InitGraf",
	0xa86f: "_OpenPort",
	0xa870: "_LocalToGlobal",
	0xa871: "_GlobalToLocal",
	0xa872: "_GrafDevice",
	0xa873: "_SetPort",
	0xa874: "_GetPort",
	0xa875: "_SetPBits",
	0xa876: "_PortSize",
	0xa877: "_MovePortTo",
	0xa878: "_SetOrigin",
	0xa879: "_SetClip",
	0xa87a: "_GetClip",
	0xa87b: "_ClipRect",
	0xa87c: "_BackPat",
	0xa880: "_TextFont",
	0xa881: "_TextFace",
	0xa882: "_TextMode",
	0xa883: "_TextSize",
	0xa884: "_SpaceExtra",
	0xa885: "_DrawChar",
	0xa886: "_DrawString",
	0xa887: "_DrawText",
	0xa888: "_TextWidth",
	0xa8fe: "_InitFonts",
	0xa8ff: "_GetFName",
	0xa900: "_GetFNum",
	0xa901: "_FMSwapFont",
	0xa902: "_RealFont",
	0xa903: "_SetFontLock",
	0xa904: "_DrawGrowIcon",
	0xa905: "_DragGrayRgn",
	0xa906: "_NewString",
	0xa907: "_SetString",
	0xa908: "_ShowHide",
	0xa909: "_CalcVis",
	0xa90a: "_CalcVBehind",
	0xa90b: "_ClipAbove",
	0xa90c: "_PaintOne",
	0xa90d: "_PaintBehind",
	0xa90e: "_SaveOld",
	0xa90f: "_DrawNew",
	0xa910: "_GetWMgrPort",
	0xa911: "_CheckUpdate",
	0xa912: "_InitWindows",
	0xa913: "_NewWindow",
	0xa914: "_DisposeWindow",
	0xa915: "_ShowWindow",
	0xa916: "_HideWindow",
	0xa917: "_GetWRefCon",
	0xa918: "_SetWRefCon",
	0xa919: "_GetWTitle",
	0xa91a: "_SetWTitle",
	0xa91b: "_MoveWindow",
	0xa91c: "_HiliteWindow",
	0xa91d: "_SizeWindow",
	0xa91e: "_TrackGoAway",
	0xa91f: "_SelectWindow",
	0xa920: "_BringToFront",
	0xa921: "_SendBehind",
	0xa922: "_BeginUpdate",
	0xa923: "_EndUpdate",
	0xa924: "_FrontWindow",
	0xa925: "_DragWindow",
	0xa926: "_DragTheRgn",
	0xa927: "_InvalRgn",
	0xa928: "_InvalRect",
	0xa929: "_ValidRgn",
	0xa92a: "_ValidRect",
	0xa92b: "_GrowWindow",
	0xa92c: "_FindWindow",
	0xa92d: "_CloseWindow",
	0xa930: "_InitMenus",
	0xa931: "_NewMenu",
	0xa932: "_DisposeMenu",
	0xa933: "_AppendMenu",
	0xa934: "_ClearMenuBar",
	0xa935: "_InsertMenu",
	0xa936: "_DeleteMenu",
	0xa937: "_DrawMenuBar",
	0xa938: "_HiliteMenu",
	0xa939: "_EnableItem",
	0xa93a: "_DisableItem",
	0xa93b: "_GetMenuBar",
	0xa93c: "_SetMenuBar",
	0xa93d: "_MenuSelect",
	0xa93e: "_MenuKey",
	0xa945: "_CheckItem",
	0xa948: "_CalcMenuSize",
	0xa949: "_GetMHandle",
	0xa94c: "_FlashMenuBar",
	0xa94d: "_AddResMenu",
	0xa950: "_CountMItems",
	0xa954: "_NewControl",
	0xa955: "_DisposeControl",
	0xa956: "_KillControls",
	0xa957: "_ShowControl",
	0xa958: "_HideControl",
	0xa959: "_MoveControl",
	0xa95c: "_SizeControl",
	0xa95d: "_HiliteControl",
	0xa960: "_GetCtlValue",
	0xa963: "_SetCtlValue",
	0xa966: "_TestControl",
	0xa967: "_DragControl",
	0xa968: "_TrackControl",
	0xa969: "_DrawControls",
	0xa96c: "_FindControl",
	0xa96e: "_Dequeue",
	0xa96f: "_Enqueue",
	0xa970: "_GetNextEvent",
	0xa971: "_EventAvail",
	0xa972: "_GetMouse",
	0xa973: "_StillDown",
	0xa974: "_Button",
	0xa975: "_TickCount",
	0xa976: "_GetKeys",
	0xa977: "_WaitMouseUp",
	0xa97b: "_InitDialogs",
	0xa97c: "_GetNewDialog",
	0xa97d: "_NewDialog",
	0xa97f: "_IsDialogEvent",
	0xa980: "_DialogSelect",
	0xa981: "_DrawDialog",
	0xa982: "_CloseDialog",
	0xa985: "_Alert",
	0xa986: "_StopAlert",
	0xa987: "_NoteAlert",
	0xa988: "_CautionAlert",
	0xa990: "_ModalDialog",
	0xa991: "_DetachResource",
	0xa992: "_SetResPurge",
	0xa993: "_CurResFile",
	0xa994: "_InitResources",
	0xa995: "_RsrcZoneInit",
	0xa997: "_OpenResFile",
	0xa998: "_UseResFile",
	0xa999: "_UpdateResFile",
	0xa99a: "_CloseResFile",
	0xa99b: "_SetResLoad",
	0xa99c: "_CountResources",
	0xa99d: "_GetIndResource",
	0xa99e: "_CountTypes",
	0xa99f: "_GetIndType",
	0xa9a0: "_GetResource",
	0xa9a1: "_GetNamedResource",
	0xa9a2: "_LoadResource",
	0xa9a3: "_ReleaseResource",
	0xa9a4: "_HomeResFile",
	0xa9a5: "_SizeRsrc",
	0xa9a6: "_GetResAttrs",
	0xa9a7: "_SetResAttrs",
	0xa9a8: "_GetResInfo",
	0xa9a9: "_SetResInfo",
	0xa9aa: "_ChangedResource",
	0xa9ab: "_AddResource",
	0xa9ad: "_RmveResource",
	0xa9af: "_ResError",
	0xa9b0: "_WriteResource",
	0xa9b1: "_CreateResFile",
	0xa9b2: "_SystemEvent",
	0xa9b3: "_SystemClick",
	0xa9b4: "_SystemTask",
	0xa9b5: "_SystemMenu",
	0xa9b6: "_OpenDeskAcc",
	0xa9b7: "_CloseDeskAcc",
	0xa9b8: "_GetPattern",
	0xa9b9: "_GetCursor",
	0xa9ba: "_GetString",
	0xa9bb: "_GetIcon",
	0xa9bc: "_GetPicture",
	0xa9bd: "_GetNewWindow",
	0xa9be: "_GetNewControl",
	0xa9bf: "_GetRMenu",
	0xa9c0: "_GetNewMBar",
	0xa9c1: "_UniqueID",
	0xa9c2: "_SysEdit",
	0xa9c6: "_Secs2Date",
	0xa9c7: "_Date2Secs",
	0xa9c8: "_SysBeep",
	0xa9c9: "_SysError",
	0xa9e0: "_Munger",
	0xa9e1: "_HandToHand",
	0xa9e2: "_PtrToXHand",
	0xa9e3: "_PtrToHand",
	0xa9e4: "_HandAndHand",
	0xa9e5: "_InitPack",
	0xa9e6: "_InitAllPacks",
	0xa9eb: "_FP68K",
	0xa9ec: "_Elems68K",
	0xa9ef: "_PtrAndHand",
	0xa9f0: "_LoadSeg",
	0xa9f1: "_UnloadSeg",
	0xa9f2: "_Launch",
	0xa9f3: "_Chain",
	0xa9f4: "_ExitToShell",
	0xa9f5: "_GetAppParms",
	0xa9f6: "_GetResFileAttrs",
	0xa9f7: "_SetResFileAttrs",
	0xa9f9: "_InfoScrap",
	0xa9fa: "_UnloadScrap",
	0xa9fb: "_LoadScrap",
	0xa9fc: "_ZeroScrap",
	0xa9fd: "_GetScrap",
	0xa9fe: "_PutScrap",
	0xa9ff: "_Debugger",
	0xabff: "_DebugStr",
}
